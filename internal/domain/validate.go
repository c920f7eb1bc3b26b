package domain

// ValidateNewCustomer checks the registration fields and returns one
// violation per failed field. An empty result means the fields are valid.
func ValidateNewCustomer(name, phone, cpf string) []FieldViolation {
	var violations []FieldViolation
	if name == "" {
		violations = append(violations, FieldViolation{Field: "name", Reason: "must not be blank"})
	}
	if !allDigits(phone) || len(phone) < 10 || len(phone) > 11 {
		violations = append(violations, FieldViolation{Field: "phone", Reason: "must be a 10 or 11 digit number"})
	}
	if !allDigits(cpf) || len(cpf) != 11 {
		violations = append(violations, FieldViolation{Field: "cpf", Reason: "must be an 11 digit number"})
	}
	return violations
}

// ValidateNewGame checks the catalog fields for a new game.
func ValidateNewGame(name string, stockTotal, pricePerDay int32) []FieldViolation {
	var violations []FieldViolation
	if name == "" {
		violations = append(violations, FieldViolation{Field: "name", Reason: "must not be blank"})
	}
	if stockTotal <= 0 {
		violations = append(violations, FieldViolation{Field: "stock_total", Reason: "must be a positive integer"})
	}
	if pricePerDay <= 0 {
		violations = append(violations, FieldViolation{Field: "price_per_day", Reason: "must be a positive integer"})
	}
	return violations
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
