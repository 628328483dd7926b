package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/magefree/mage-layers-go/internal/game"
)

// CardDefinition is one printed card as stored in the cards table.
type CardDefinition struct {
	Name      string
	TypeLine  string
	ManaCost  string
	Power     string
	Toughness string
	RulesText string
	Colors    string
}

// CardRepository reads card definitions from Postgres.
type CardRepository struct {
	db *pgxpool.Pool
}

// NewCardRepository creates a card repository on the given pool.
func NewCardRepository(db *pgxpool.Pool) *CardRepository {
	return &CardRepository{db: db}
}

const cardColumns = "name, type_line, mana_cost, power, toughness, rules_text, colors"

// GetByName fetches one card definition by exact name.
func (r *CardRepository) GetByName(ctx context.Context, name string) (*CardDefinition, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+cardColumns+" FROM cards WHERE name = $1", name)
	return scanCard(row)
}

// ListByType fetches card definitions whose type line contains the given
// word, up to limit.
func (r *CardRepository) ListByType(ctx context.Context, typeWord string, limit int) ([]*CardDefinition, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+cardColumns+" FROM cards WHERE type_line ILIKE '%' || $1 || '%' ORDER BY name LIMIT $2",
		typeWord, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*CardDefinition
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

func scanCard(row pgx.Row) (*CardDefinition, error) {
	var c CardDefinition
	err := row.Scan(&c.Name, &c.TypeLine, &c.ManaCost, &c.Power, &c.Toughness, &c.RulesText, &c.Colors)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ToObject instantiates a game object from the definition for the given
// controller. The type line is split on the em dash: supertypes and card
// types left of it, subtypes right of it.
func (c *CardDefinition) ToObject(controller game.PlayerID, zone game.Zone) *game.Object {
	obj := game.NewObject(c.Name, controller, zone)

	left, right := c.TypeLine, ""
	if idx := strings.Index(c.TypeLine, "—"); idx >= 0 {
		left = strings.TrimSpace(c.TypeLine[:idx])
		right = strings.TrimSpace(c.TypeLine[idx+len("—"):])
	}

	for _, word := range strings.Fields(left) {
		switch word {
		case "Basic", "Legendary", "Snow", "World":
			obj.Supertypes = append(obj.Supertypes, game.Supertype(word))
		default:
			obj.CardTypes = append(obj.CardTypes, game.CardType(word))
		}
	}
	for _, word := range strings.Fields(right) {
		obj.Subtypes = append(obj.Subtypes, game.Subtype(word))
	}

	if c.ManaCost != "" {
		obj = obj.WithManaCost(c.ManaCost)
	}

	if power, ok := parseStat(c.Power); ok {
		if toughness, ok := parseStat(c.Toughness); ok {
			obj = obj.WithPT(power, toughness)
		}
	}

	obj.Colors = parseColors(c.Colors)
	return obj
}

// parseStat parses a printed power/toughness. Star values ("*") have no
// fixed number; they are defined by a CDA and left unset here.
func parseStat(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(s, "*") {
		return 0, false
	}
	n := 0
	neg := false
	for i, r := range s {
		if i == 0 && r == '-' {
			neg = true
			continue
		}
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	if neg {
		n = -n
	}
	return n, true
}

func parseColors(s string) game.ColorSet {
	var set game.ColorSet
	for _, r := range s {
		switch r {
		case 'W':
			set = set.Union(game.NewColorSet(game.ColorWhite))
		case 'U':
			set = set.Union(game.NewColorSet(game.ColorBlue))
		case 'B':
			set = set.Union(game.NewColorSet(game.ColorBlack))
		case 'R':
			set = set.Union(game.NewColorSet(game.ColorRed))
		case 'G':
			set = set.Union(game.NewColorSet(game.ColorGreen))
		}
	}
	return set
}
