package validation

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/blaisecz/health-risk/internal/domain"
	"github.com/blaisecz/health-risk/pkg/problem"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their JSON names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("metric_type", func(fl validator.FieldLevel) bool {
		return domain.MetricType(fl.Field().String()).IsKnown()
	})

	validate.RegisterStructValidation(func(sl validator.StructLevel) {
		in := sl.Current().Interface().(domain.CreateMetricRequest)
		checkMetricLimit(sl, in.MetricType, in.Value)
	}, domain.CreateMetricRequest{})
	validate.RegisterStructValidation(func(sl validator.StructLevel) {
		in := sl.Current().Interface().(domain.MetricInput)
		checkMetricLimit(sl, in.MetricType, in.Value)
	}, domain.MetricInput{})
}

// checkMetricLimit rejects values above the per-type limit. Values already outside
// [0, MaxMetricValue] are reported by the field tags.
func checkMetricLimit(sl validator.StructLevel, metricType domain.MetricType, value float64) {
	limit, ok := metricType.Limit()
	if !ok || value < 0 || value > domain.MaxMetricValue {
		return
	}
	if value > limit {
		sl.ReportError(value, "value", "Value", "metric_limit", strconv.FormatFloat(limit, 'f', -1, 64))
	}
}

// Validate validates a struct and returns field errors
func Validate(s any) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []problem.FieldError{{Field: "body", Message: "is invalid"}}
	}

	fieldErrors := make([]problem.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   fieldPath(fe),
			Message: getValidationMessage(fe),
		})
	}
	return fieldErrors
}

// fieldPath drops the root struct name from the namespace, e.g.
// "CreateMetricsRequest.records[2].value" becomes "records[2].value".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		if err.Kind() == reflect.Slice {
			return "must contain at least " + err.Param() + " items"
		}
		return "must be at least " + err.Param()
	case "max":
		if err.Kind() == reflect.Slice {
			return "must contain at most " + err.Param() + " items"
		}
		return "must be at most " + err.Param()
	case "gte":
		return "must be greater than or equal to " + err.Param()
	case "oneof":
		return "must be one of: " + err.Param()
	case "lte":
		return "must be less than or equal to " + err.Param()
	case "metric_type":
		return "must be a supported metric type"
	case "metric_limit":
		return "must be at most " + err.Param() + " for this metric type"
	default:
		return "is invalid"
	}
}
