package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VisheshVarshney/MUJConnect/internal/menu"
	"github.com/VisheshVarshney/MUJConnect/internal/outlet"
)

// fixtureStore is an in-memory menu.Store for dispatcher tests.
type fixtureStore struct {
	outlets map[string]*menu.OutletMenu
	err     error
}

func (f *fixtureStore) Outlet(ctx context.Context, key string) (*menu.OutletMenu, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.outlets[key], nil
}

func (f *fixtureStore) All(ctx context.Context) (map[string]*menu.OutletMenu, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.outlets, nil
}

func testStore() *fixtureStore {
	return &fixtureStore{outlets: map[string]*menu.OutletMenu{
		"chatkara": {
			Outlet: "chatkara",
			Categories: map[string][]menu.Item{
				"snacks": {
					{Name: "Samosa", Price: 50, Cuisine: "Indian"},
					{Name: "Chole Bhature", Price: 80, Cuisine: "Indian"},
					{Name: "Special Thali", Price: 120, Cuisine: "unknown"},
				},
			},
		},
		"theitalianoven": {
			Outlet: "theitalianoven",
			Categories: map[string][]menu.Item{
				"mains": {
					{Name: "Margherita", Price: 150, Cuisine: "Italian"},
					{Name: "Penne Arrabbiata", Price: 180, Cuisine: "italian"},
				},
			},
		},
	}}
}

func TestRespond_Menu(t *testing.T) {
	ctx := context.Background()
	albums := outlet.Directory()

	reply, err := Respond(ctx, Query{
		Intent:  IntentMenu,
		Details: Details{OutletName: "Zaikaa"},
	}, testStore(), albums)
	require.NoError(t, err)
	assert.Contains(t, reply, "https://photos.app.goo.gl/ocoXSkr5zLKCSHsQ6")
	assert.Contains(t, reply, "Zaikaa")

	reply, err = Respond(ctx, Query{
		Intent:  IntentMenu,
		Details: Details{OutletName: "Nosuchplace"},
	}, testStore(), albums)
	require.NoError(t, err)
	assert.Equal(t, "Sorry, I couldn't find a menu link for Nosuchplace.", reply)

	// Absent outlet name gets a neutral label instead of a broken reply.
	reply, err = Respond(ctx, Query{Intent: IntentMenu}, testStore(), albums)
	require.NoError(t, err)
	assert.Equal(t, "Sorry, I couldn't find a menu link for that outlet.", reply)
}

func TestRespond_Budget(t *testing.T) {
	ctx := context.Background()
	albums := outlet.Directory()

	reply, err := Respond(ctx, Query{
		Intent:  IntentBudget,
		Details: Details{OutletName: "Chatkara", Budget: 80},
	}, testStore(), albums)
	require.NoError(t, err)
	assert.Contains(t, reply, "Samosa ($50)")
	assert.Contains(t, reply, "Chole Bhature ($80)")
	assert.NotContains(t, reply, "Special Thali")
	assert.Contains(t, reply, "under $80 from Chatkara")

	reply, err = Respond(ctx, Query{
		Intent:  IntentBudget,
		Details: Details{OutletName: "Chatkara", Budget: 10},
	}, testStore(), albums)
	require.NoError(t, err)
	assert.Equal(t, "Sorry, no items found under $10 from Chatkara.", reply)

	// Unknown outlet resolves to the no-items reply, not an error.
	reply, err = Respond(ctx, Query{
		Intent:  IntentBudget,
		Details: Details{OutletName: "Ghost Kitchen", Budget: 500},
	}, testStore(), albums)
	require.NoError(t, err)
	assert.Equal(t, "Sorry, no items found under $500 from Ghost kitchen.", reply)
}

func TestRespond_BudgetMissingDetails(t *testing.T) {
	ctx := context.Background()
	albums := outlet.Directory()

	reply, err := Respond(ctx, Query{
		Intent:  IntentBudget,
		Details: Details{Budget: 100},
	}, testStore(), albums)
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply)

	reply, err = Respond(ctx, Query{
		Intent:  IntentBudget,
		Details: Details{OutletName: "Chatkara"},
	}, testStore(), albums)
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply)
}

func TestRespond_Cuisine(t *testing.T) {
	ctx := context.Background()
	albums := outlet.Directory()

	// Mixed-case tags match case-insensitively; chatkara contributes nothing.
	reply, err := Respond(ctx, Query{
		Intent:  IntentCuisine,
		Details: Details{Cuisine: "ITALIAN"},
	}, testStore(), albums)
	require.NoError(t, err)
	assert.Contains(t, reply, "Margherita ($150)")
	assert.Contains(t, reply, "Penne Arrabbiata ($180)")
	assert.NotContains(t, reply, "Samosa")

	reply, err = Respond(ctx, Query{
		Intent:  IntentCuisine,
		Details: Details{Cuisine: "mexican"},
	}, testStore(), albums)
	require.NoError(t, err)
	assert.Equal(t, "Sorry, no Mexican dishes found in our outlets.", reply)
}

func TestRespond_Fallback(t *testing.T) {
	ctx := context.Background()
	albums := outlet.Directory()

	reply, err := Respond(ctx, Fallback(), testStore(), albums)
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply)

	// Unrecognized intent values land on the same reply.
	reply, err = Respond(ctx, Query{Intent: Intent("order")}, testStore(), albums)
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply)
}

func TestRespond_StoreError(t *testing.T) {
	ctx := context.Background()
	broken := &fixtureStore{err: errors.New("connection lost")}

	_, err := Respond(ctx, Query{
		Intent:  IntentBudget,
		Details: Details{OutletName: "Chatkara", Budget: 100},
	}, broken, outlet.Directory())
	assert.Error(t, err)
}
