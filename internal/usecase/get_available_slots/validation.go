package get_available_slots

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
	}

	return nil
}
