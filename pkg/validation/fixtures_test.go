package validation_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/validationkit/pkg/validation"
)

type period struct {
	Code      *string
	Text      string
	StartDate time.Time
	EndDate   time.Time
}

func newPeriodValidator(opts ...validation.Option) *validation.Validator[*period] {
	v := validation.New[*period](append([]validation.Option{validation.WithName("period")}, opts...)...)

	validation.Property(v, "Code", func(p *period) *string { return p.Code }).
		Mandatory()
	validation.Property(v, "Text", func(p *period) string { return p.Text }).
		Mandatory().
		Add(validation.MaxLength(10))
	validation.Property(v, "StartDate", func(p *period) time.Time { return p.StartDate })
	validation.Property(v, "EndDate", func(p *period) time.Time { return p.EndDate }).
		WhenEntity(func(p *period) bool { return !p.StartDate.IsZero() && !p.EndDate.IsZero() }).
		CompareProperty(validation.GreaterThanEqual, "StartDate")

	return v
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

type customer struct {
	FirstName string
	LastName  string
	Email     string
	Tags      map[string]string
}

type line struct {
	SKU      string
	Quantity int
}

type order struct {
	Number   string
	Status   string
	Customer *customer
	Lines    []*line
}

func newCustomerValidator() *validation.Validator[*customer] {
	v := validation.New[*customer](validation.WithName("customer"))
	validation.Property(v, "FirstName", func(c *customer) string { return c.FirstName }).Mandatory()
	validation.Property(v, "Email", func(c *customer) string { return c.Email }).Add(validation.Email())
	return v
}

func newLineValidator() *validation.Validator[*line] {
	v := validation.New[*line](validation.WithName("line"))
	validation.Property(v, "SKU", func(l *line) string { return l.SKU }).Mandatory()
	validation.Property(v, "Quantity", func(l *line) int { return l.Quantity }).
		Compare(validation.GreaterThan, 0)
	return v
}

// MockObserver records validation runs.
type MockObserver struct {
	mock.Mock
}

func (m *MockObserver) ObserveValidation(ctx context.Context, validator string, d time.Duration, o validation.Outcome, err error) {
	m.Called(ctx, validator, d, o, err)
}

// MockChecker answers existence lookups.
type MockChecker struct {
	mock.Mock
}

func (m *MockChecker) Exists(ctx context.Context, value string) (bool, error) {
	args := m.Called(ctx, value)
	return args.Bool(0), args.Error(1)
}

// counter is a rule that records how often it ran.
type counter struct {
	calls int
}

func (c *counter) Validate(context.Context, *validation.PropertyContext[string]) error {
	c.calls++
	return nil
}
