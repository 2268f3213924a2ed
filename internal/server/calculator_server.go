package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"

	"outlet_margin/internal/domain/entity"
	"outlet_margin/pkg/errcodes"
	"outlet_margin/pkg/httpx/reply"
	"outlet_margin/pkg/httpx/req"
	"outlet_margin/pkg/rest"
)

type calculatorService interface {
	Quote(ctx context.Context, input entity.PricingInput) entity.PricingResult
	SaveHistory(ctx context.Context, memo string, input entity.PricingInput) (entity.HistoryRecord, error)
	Records(limit int) []entity.HistoryRecord
	DeleteHistory(ctx context.Context, id string) error
}

type CalculatorServer struct {
	calculatorService calculatorService
}

func NewCalculatorServer(calculatorService calculatorService) CalculatorServer {
	return CalculatorServer{
		calculatorService: calculatorService,
	}
}

func (s CalculatorServer) postV1Quote(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.QuoteRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	input, err := newDomainInput(request)
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("newDomainInput: %w", err),
			failure.WithCode(errcodes.InvalidQuoteInput),
		)
	}

	result := s.calculatorService.Quote(ctx, input)

	reply.JSON(ctx, w, http.StatusOK, newRESTQuote(result))

	return nil
}

func (s CalculatorServer) postV1History(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.SaveHistoryRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	input, err := newDomainInput(request.Input)
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("newDomainInput: %w", err),
			failure.WithCode(errcodes.InvalidQuoteInput),
		)
	}

	record, err := s.calculatorService.SaveHistory(ctx, request.Memo, input)
	if err != nil {
		return asFailure(fmt.Errorf("calculatorService.SaveHistory: %w", err))
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTHistoryRecord(record))

	return nil
}

func (s CalculatorServer) getV1History(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		return fmt.Errorf("parseLimit: %w", err)
	}

	records := s.calculatorService.Records(limit)

	reply.JSON(ctx, w, http.StatusOK, newRESTHistoryList(records))

	return nil
}

func (s CalculatorServer) deleteV1History(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id := r.PathValue("id")

	if err := s.calculatorService.DeleteHistory(ctx, id); err != nil {
		return asFailure(fmt.Errorf("calculatorService.DeleteHistory: %w", err))
	}

	reply.OK(w)

	return nil
}

// parseLimit: пустое значение — без ограничения, мусор — ошибка валидации.
func parseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, failure.NewInvalidArgumentError(
			fmt.Sprintf("invalid limit %q", raw),
			failure.WithCode(errcodes.ValidationError),
		)
	}

	return limit, nil
}
