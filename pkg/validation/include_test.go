package validation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validationkit/pkg/validation"
)

type auditable struct {
	CreatedBy string
	Revision  int
}

type document struct {
	auditable
	Title string
}

type titled interface {
	GetTitle() string
}

func (d *document) GetTitle() string { return d.Title }

func newAuditableValidator() *validation.Validator[*auditable] {
	v := validation.New[*auditable](validation.WithName("auditable"))
	validation.Property(v, "CreatedBy", func(a *auditable) string { return a.CreatedBy }).Mandatory()
	validation.Property(v, "Revision", func(a *auditable) int { return a.Revision }).
		Add(validation.NonNegative[int]())
	return v
}

func TestInclude(t *testing.T) {
	t.Parallel()

	v := validation.New[*document](validation.WithName("document"))
	validation.Property(v, "Title", func(d *document) string { return d.Title }).Mandatory()
	validation.Include(v, newAuditableValidator(), func(d *document) *auditable { return &d.auditable })
	validation.Property(v, "Title", func(d *document) string { return d.Title }).
		DependsOn("CreatedBy").
		Add(validation.MinLength(3))

	r, err := v.Validate(context.Background(), &document{Title: "ab", auditable: auditable{Revision: -1}})
	require.NoError(t, err)
	assert.Equal(t, []string{"createdBy", "revision"}, r.Messages().Fields())

	r, err = v.Validate(context.Background(), &document{Title: "ab", auditable: auditable{CreatedBy: "ann"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"title"}, r.Messages().Fields())
}

func TestInclude_NilConversion(t *testing.T) {
	t.Parallel()

	v := validation.New[*document]()
	validation.Include(v, newAuditableValidator(), func(*document) *auditable { return nil })

	_, err := v.Validate(context.Background(), &document{})
	require.Error(t, err)
	assert.True(t, validation.IsConfigError(err))
	assert.ErrorIs(t, err, validation.ErrNilValue)
}

func TestIncludeBase(t *testing.T) {
	t.Parallel()

	base := validation.New[titled](validation.WithName("titled"))
	validation.Property(base, "Title", func(t titled) string { return t.GetTitle() }).Mandatory()

	t.Run("subject satisfies base", func(t *testing.T) {
		t.Parallel()
		v := validation.New[*document]()
		validation.IncludeBase[*document, titled](v, base)

		r, err := v.Validate(context.Background(), &document{})
		require.NoError(t, err)
		assert.True(t, r.HasError("title"))
	})

	t.Run("subject does not satisfy base", func(t *testing.T) {
		t.Parallel()
		v := validation.New[*order]()
		validation.IncludeBase[*order, titled](v, base)

		_, err := v.Validate(context.Background(), &order{})
		require.Error(t, err)
		assert.True(t, validation.IsConfigError(err))
	})

	t.Run("nil base panics", func(t *testing.T) {
		t.Parallel()
		v := validation.New[*document]()
		assert.Panics(t, func() {
			validation.IncludeBase[*document, titled](v, nil)
		})
	})
}
