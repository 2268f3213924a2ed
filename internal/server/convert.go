package server

import (
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"outlet_margin/internal/domain"
	"outlet_margin/internal/domain/entity"
	"outlet_margin/internal/domain/value"
	"outlet_margin/pkg/errcodes"
	"outlet_margin/pkg/lox"
	"outlet_margin/pkg/numfmt"
	"outlet_margin/pkg/rest"
)

// newDomainInput парсит свободный текст ценовых полей: цифры извлекаются,
// пустой ввод остаётся отсутствием значения, а не нулём.
func newDomainInput(request rest.QuoteRequest) (entity.PricingInput, error) {
	mode, err := value.ParseDiscountMode(request.DiscountMode)
	if err != nil {
		return entity.PricingInput{}, fmt.Errorf("value.ParseDiscountMode: %w", err)
	}

	return entity.PricingInput{
		BasePrice:       numfmt.ParseAmount(request.BasePrice),
		DiscountMode:    mode,
		DiscountAmount:  numfmt.ParseAmount(request.DiscountAmount),
		DiscountPercent: request.DiscountPercent,
		ExtraPercent:    request.ExtraPercent,
		KreamPrice:      numfmt.ParseAmount(request.KreamPrice),
		PoizonPrice:     numfmt.ParseAmount(request.PoizonPrice),
	}, nil
}

func newRESTQuote(result entity.PricingResult) rest.QuoteResponse {
	return rest.QuoteResponse{
		FirstDiscounted: wonAmount(result.FirstDiscounted),
		Final:           wonAmount(result.Final),
		Tax:             wonAmount(result.Tax),
		AfterTax:        wonAmount(result.AfterTax),
		Kream:           newRESTPlatformQuote(result.Kream),
		Poizon:          newRESTPlatformQuote(result.Poizon),
	}
}

func newRESTPlatformQuote(quote entity.PlatformQuote) rest.PlatformQuote {
	return rest.PlatformQuote{
		Fee:           wonAmount(quote.Fee),
		Net:           wonAmount(quote.Net),
		Margin:        wonAmount(quote.Margin),
		MarginPercent: percentAmount(quote.MarginPercent),
	}
}

func newRESTHistoryRecord(record entity.HistoryRecord) rest.HistoryRecord {
	return rest.HistoryRecord{
		ID:        record.ID,
		Memo:      record.Memo,
		Input:     newRESTInput(record.Input),
		Result:    newRESTQuote(record.Result),
		CreatedAt: record.CreatedAt,
	}
}

func newRESTInput(input entity.PricingInput) rest.PricingInput {
	return rest.PricingInput{
		BasePrice:       input.BasePrice,
		DiscountMode:    input.DiscountMode.String(),
		DiscountAmount:  input.DiscountAmount,
		DiscountPercent: input.DiscountPercent,
		ExtraPercent:    input.ExtraPercent,
		KreamPrice:      input.KreamPrice,
		PoizonPrice:     input.PoizonPrice,
	}
}

func newRESTHistoryList(records []entity.HistoryRecord) rest.ListHistoryResponse {
	return rest.ListHistoryResponse{
		Records: lox.Map(records, newRESTHistoryRecord),
	}
}

func wonAmount(v *float64) rest.Amount {
	return rest.Amount{Value: v, Display: numfmt.DisplayWon(v)}
}

func percentAmount(v *float64) rest.Amount {
	display := numfmt.Missing
	if v != nil {
		display = fmt.Sprintf("%.1f%%", *v)
	}

	return rest.Amount{Value: v, Display: display}
}

// asFailure переводит доменную ошибку в транспортную таксономию, чтобы
// reply сопоставил ей корректный HTTP-статус.
func asFailure(err error) error {
	code, ok := domain.GetCode(err)
	if !ok {
		return err
	}

	switch code {
	case errcodes.RecordNotFound:
		return failure.NewNotFoundErrorFromError(err, failure.WithCode(code))
	case errcodes.EmptyMemo:
		return failure.NewInvalidArgumentErrorFromError(err, failure.WithCode(code))
	}

	return err
}
