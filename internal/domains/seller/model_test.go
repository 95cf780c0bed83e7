package seller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSellerToResponse_BirthDateInFormZone(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	v := NewFormValidator(tokyo)

	entered := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	raw := RawFields{Name: "Ana", Email: "ana@x.com", BirthDate: &entered, BaseSalary: "10"}
	s, err := v.Validate(raw, nil)
	require.NoError(t, err)

	// read back from the store in another zone
	stored := s.BirthDate.UTC()
	s.BirthDate = &stored

	assert.Equal(t, "2000-01-01", s.ToResponse(tokyo).BirthDate)
	assert.Equal(t, "1999-12-31", s.ToResponse(nil).BirthDate)
}

func TestSellerToResponse_Optional(t *testing.T) {
	resp := (&Seller{Name: "Bob", BaseSalary: ParseSalary("1234.5")}).ToResponse(time.UTC)

	assert.Empty(t, resp.BirthDate)
	assert.Equal(t, "1234.50", resp.BaseSalary)
	assert.Nil(t, resp.Department)
}
