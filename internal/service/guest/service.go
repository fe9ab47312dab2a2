package guest

import "github.com/google/uuid"

// Service issues guest identifiers for anonymous shoppers. The ID travels
// with the client on every cart and checkout request.
type Service struct{}

func New() *Service {
	return &Service{}
}

// Issue returns a fresh guest ID.
func (s *Service) Issue() string {
	return uuid.NewString()
}

// Valid reports whether id is a well-formed guest ID.
func (s *Service) Valid(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
