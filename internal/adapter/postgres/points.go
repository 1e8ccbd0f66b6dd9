package postgres

import (
	"math"

	sq "github.com/Masterminds/squirrel"
)

// Builder is the squirrel statement builder configured for PostgreSQL
// placeholders. All repository query building goes through it.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// RoundPoints rounds a domain point value half-up (half away from zero) to
// a whole number for persistence. Domain entities keep float precision;
// the storage schema keeps integral point columns.
func RoundPoints(v float64) int64 {
	return int64(math.Round(v))
}
