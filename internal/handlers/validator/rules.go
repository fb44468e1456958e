package validator

import "github.com/go-playground/validator/v10"

func registerFn(tag string, fn func(fl validator.FieldLevel) bool) func(v *validator.Validate) {
	return func(v *validator.Validate) {
		_ = v.RegisterValidation(tag, fn)
	}
}

func NewSwitchValidationRules() []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("asset_id", assetIDValidator),
		},
		{
			Rule: registerFn("switch_name", switchNameValidator),
		},
		{
			Rule: registerFn("switch_status", switchStatusValidator),
		},
		{
			Rule: registerFn("criticality", criticalityValidator),
		},
		{
			Rule: registerFn("ports_used", portsUsedValidator),
		},
	}
}
