package chat

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/VisheshVarshney/MUJConnect/internal/menu"
	"github.com/VisheshVarshney/MUJConnect/internal/outlet"
)

// FallbackReply is the fixed answer for anything the bot can't act on.
const FallbackReply = "I didn't catch that. Are you asking about menus, budgets, or outlets? 😊"

// Respond turns a classified query into the chatbot's reply. Branches are
// evaluated in fixed priority order: menu, budget, cuisine, then the
// fallback reply for everything else, including recognized intents whose
// required details are missing. Store errors propagate to the caller.
func Respond(ctx context.Context, q Query, menus menu.Store, albums outlet.Albums) (string, error) {
	switch q.Intent {
	case IntentMenu:
		return menuReply(q.Details, albums), nil
	case IntentBudget:
		if q.Details.Budget > 0 && q.Details.OutletName != "" {
			return budgetReply(ctx, q.Details, menus)
		}
	case IntentCuisine:
		if q.Details.Cuisine != "" {
			return cuisineReply(ctx, q.Details.Cuisine, menus)
		}
	}
	return FallbackReply, nil
}

func menuReply(d Details, albums outlet.Albums) string {
	if url, ok := albums.Resolve(d.OutletName); ok {
		return fmt.Sprintf("Here’s the menu link for %s: %s 🍴", capitalize(d.OutletName), url)
	}

	// The outlet name may be missing entirely; a neutral label keeps the
	// not-found reply well-formed.
	name := "that outlet"
	if d.OutletName != "" {
		name = capitalize(d.OutletName)
	}
	return fmt.Sprintf("Sorry, I couldn't find a menu link for %s.", name)
}

func budgetReply(ctx context.Context, d Details, menus menu.Store) (string, error) {
	m, err := menus.Outlet(ctx, outlet.Normalize(d.OutletName))
	if err != nil {
		return "", err
	}

	var affordable []menu.Item
	if m != nil {
		for _, category := range sortedKeys(m.Categories) {
			for _, item := range m.Categories[category] {
				if float64(item.Price) <= d.Budget {
					affordable = append(affordable, item)
				}
			}
		}
	}

	budget := menu.Price(d.Budget)
	if len(affordable) == 0 {
		return fmt.Sprintf("Sorry, no items found under $%s from %s.", budget, capitalize(d.OutletName)), nil
	}
	return fmt.Sprintf("Here are items under $%s from %s: %s", budget, capitalize(d.OutletName), itemList(affordable)), nil
}

func cuisineReply(ctx context.Context, cuisine string, menus menu.Store) (string, error) {
	outlets, err := menus.All(ctx)
	if err != nil {
		return "", err
	}

	var matching []menu.Item
	for _, key := range sortedKeys(outlets) {
		m := outlets[key]
		for _, category := range sortedKeys(m.Categories) {
			for _, item := range m.Categories[category] {
				if strings.EqualFold(item.Cuisine, cuisine) {
					matching = append(matching, item)
				}
			}
		}
	}

	if len(matching) == 0 {
		return fmt.Sprintf("Sorry, no %s dishes found in our outlets.", capitalize(cuisine)), nil
	}
	return fmt.Sprintf("Here are some %s dishes: %s", capitalize(cuisine), itemList(matching)), nil
}

func itemList(items []menu.Item) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s ($%s)", item.Name, item.Price))
	}
	return strings.Join(parts, ", ")
}

// capitalize uppercases the first letter and lowercases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
