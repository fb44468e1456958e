package validator

import (
	"reflect"
	"regexp"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/kubev2v/switch-inventory/internal/store/model"
)

var (
	assetIDRegex    = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
	switchNameRegex = regexp.MustCompile(`^[\p{L}0-9][\p{L}0-9 ._/-]*$`)

	switchStatuses = []string{
		model.StatusInProduction,
		model.StatusActive,
		model.StatusInactive,
		model.StatusMaintenance,
		model.StatusInactiveMaintenance,
	}
	criticalities = []string{model.CriticalityHigh, "Média", "Baixa"}
)

func assetIDValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return assetIDRegex.MatchString(val)
}

func switchNameValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return switchNameRegex.MatchString(val)
}

func switchStatusValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return slices.Contains(switchStatuses, val)
}

// criticalityValidator accepts an empty value; the service falls back to the default criticality.
func criticalityValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return val == "" || slices.Contains(criticalities, val)
}

// portsUsedValidator checks that the used ports of a family do not exceed the total named by the param.
func portsUsedValidator(fl validator.FieldLevel) bool {
	used, ok := fl.Field().Interface().(int)
	if !ok {
		return false
	}

	total, kind, _, found := fl.GetStructFieldOKAdvanced2(fl.Parent(), fl.Param())
	if !found || kind != reflect.Int {
		return true
	}

	return used <= int(total.Int())
}
