package value_test

import (
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"outlet_margin/internal/domain/value"
)

func TestParseDiscountMode(t *testing.T) {
	rq := require.New(t)

	mode, err := value.ParseDiscountMode("amount")
	rq.NoError(err)
	rq.Equal(value.DiscountModeAmount, mode)

	mode, err = value.ParseDiscountMode("percent")
	rq.NoError(err)
	rq.Equal(value.DiscountModePercent, mode)

	// Пустой режим — amount по умолчанию.
	mode, err = value.ParseDiscountMode("")
	rq.NoError(err)
	rq.Equal(value.DiscountModeAmount, mode)

	_, err = value.ParseDiscountMode("bogus")
	rq.Error(err)
	rq.True(failure.IsInvalidArgumentError(err))
}
