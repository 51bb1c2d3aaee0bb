package model

import "time"

// Season is a named agricultural period with display metadata.
type Season struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	ColorHex  string    `db:"color_hex"`
	IconName  string    `db:"icon_name"`
	Duration  string    `db:"duration"`
	SortOrder int       `db:"sort_order"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
