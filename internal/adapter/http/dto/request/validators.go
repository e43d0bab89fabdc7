package request

import (
	"reflect"
	"strings"
	"sync"

	"claimscope/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators installs the decimal and enum validators on gin's binding engine.
// It is safe to call more than once.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		registerErr = register(v)
	})
	return registerErr
}

func register(v *validator.Validate) error {
	// Errors report the json name of a field.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// Decimals are validated through their string form.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	for tag, fn := range map[string]validator.Func{
		"decimal_nonneg":  decimalCheck(func(d decimal.Decimal) bool { return !d.IsNegative() }),
		"decimal_pos":     decimalCheck(decimal.Decimal.IsPositive),
		"zonetype":        enumCheck(func(s string) bool { return entities.ZoneType(s).Valid() }),
		"zonestatus":      enumCheck(func(s string) bool { return entities.ZoneStatus(s).Valid() }),
		"area_kind":       enumCheck(func(s string) bool { return entities.AreaKind(s).Valid() }),
		"opening_type":    enumCheck(func(s string) bool { return entities.OpeningType(s).Valid() }),
		"coverage_type":   enumCheck(func(s string) bool { return entities.CoverageType(s).Valid() }),
		"estimate_status": enumCheck(func(s string) bool { return entities.EstimateStatus(s).Valid() }),
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func decimalCheck(ok func(decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && ok(d)
	}
}

func enumCheck(ok func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return ok(fl.Field().String())
	}
}
