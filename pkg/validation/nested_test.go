package validation_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validationkit/pkg/validation"
)

func newOrderValidator() *validation.Validator[*order] {
	v := validation.New[*order](validation.WithName("order"))
	validation.Property(v, "Number", func(o *order) string { return o.Number }).Mandatory()
	validation.Property(v, "Customer", func(o *order) *customer { return o.Customer }).
		Mandatory().
		Entity(newCustomerValidator())
	validation.Property(v, "Lines", func(o *order) []*line { return o.Lines }).
		Collection(validation.NewCollection[*line]().
			Items(newLineValidator()).
			MinCount(1).
			DuplicateCheck(func(l *line) any { return l.SKU }, "SKU"))
	return v
}

func TestNested_Paths(t *testing.T) {
	t.Parallel()

	subject := &order{
		Number:   "1",
		Customer: &customer{Email: "nope"},
		Lines:    []*line{{SKU: "A", Quantity: 1}, {SKU: "", Quantity: 2}},
	}

	wire, err := newOrderValidator().Validate(context.Background(), subject)
	require.NoError(t, err)
	native, err := newOrderValidator().Validate(context.Background(), subject, validation.Args{})
	require.NoError(t, err)

	wantWire := []string{"customer.firstName", "customer.email", "lines[1].sku"}
	wantNative := []string{"Customer.FirstName", "Customer.Email", "Lines[1].SKU"}
	assert.Equal(t, wantWire, wire.Messages().Fields())
	assert.Equal(t, wantNative, native.Messages().Fields())

	for i := range wantWire {
		assert.Equal(t, pathShape(wantWire[i]), pathShape(native.Messages().Fields()[i]))
	}
}

// pathShape keeps the separators and brackets of a path and drops the names.
func pathShape(path string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', '[', ']':
			return r
		}
		return -1
	}, path)
}

func TestNested_NilAndShallow(t *testing.T) {
	t.Parallel()

	v := validation.New[*order]()
	validation.Property(v, "Customer", func(o *order) *customer { return o.Customer }).
		Entity(newCustomerValidator())
	validation.Property(v, "Lines", func(o *order) []*line { return o.Lines }).
		Collection(validation.NewCollection[*line]().Items(newLineValidator()).MaxCount(1))

	t.Run("nil nested values are skipped", func(t *testing.T) {
		t.Parallel()
		r, err := v.Validate(context.Background(), &order{})
		require.NoError(t, err)
		assert.Empty(t, r.Messages())
	})

	t.Run("shallow skips items but keeps counts", func(t *testing.T) {
		t.Parallel()
		args := validation.NewArgs()
		args.ShallowValidation = true

		r, err := v.Validate(context.Background(), &order{
			Customer: &customer{},
			Lines:    []*line{{}, {}},
		}, args)
		require.NoError(t, err)
		assert.Equal(t, []string{"lines"}, r.Messages().Fields())
		assert.Equal(t, "Lines must not exceed 1 item(s).", r.Messages()[0].String())
	})
}

type node struct {
	Name string
	Next *node
}

func TestNested_MaxDepth(t *testing.T) {
	validation.UseSettings(validation.Settings{UseJSONNames: true, MaxDepth: 5})
	t.Cleanup(func() { validation.UseSettings(validation.DefaultSettings()) })

	v := validation.New[*node]()
	validation.Property(v, "Name", func(n *node) string { return n.Name }).Mandatory()
	validation.Property(v, "Next", func(n *node) *node { return n.Next }).Entity(v)

	t.Run("finite chain", func(t *testing.T) {
		chain := &node{Name: "a", Next: &node{Name: "b", Next: &node{}}}
		r, err := v.Validate(context.Background(), chain)
		require.NoError(t, err)
		assert.Equal(t, []string{"next.next.name"}, r.Messages().Fields())
	})

	t.Run("cycle", func(t *testing.T) {
		cyclic := &node{Name: "loop"}
		cyclic.Next = cyclic

		_, err := v.Validate(context.Background(), cyclic)
		assert.ErrorIs(t, err, validation.ErrMaxDepthExceeded)
	})
}

func TestNested_ConfigFlowsDown(t *testing.T) {
	t.Parallel()

	var seen []any
	child := validation.New[*customer]()
	validation.Property(child, "FirstName", func(c *customer) string { return c.FirstName }).
		Custom(func(_ context.Context, pc *validation.PropertyContext[string]) error {
			v, _ := pc.Parent.Config("region")
			seen = append(seen, v)
			pc.Parent.Args().Config["region"] = "changed"
			return nil
		})

	parent := validation.New[*order]()
	validation.Property(parent, "Customer", func(o *order) *customer { return o.Customer }).Entity(child)
	validation.Property(parent, "Number", func(o *order) string { return o.Number }).
		Custom(func(_ context.Context, pc *validation.PropertyContext[string]) error {
			v, _ := pc.Parent.Config("region")
			seen = append(seen, v)
			return nil
		})

	args := validation.NewArgs()
	args.Config = map[string]any{"region": "eu"}
	_, err := parent.Validate(context.Background(), &order{Customer: &customer{}}, args)
	require.NoError(t, err)

	assert.Equal(t, []any{"eu", "eu"}, seen)
	assert.Equal(t, "eu", args.Config["region"])
}
