package store

import (
	"time"

	"cafe-map/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- 假實作 ---------- */

// cafeRow 實作 pgx.Row，依 cafeColumns 的順序寫入欄位
type cafeRow struct {
	scanErr error
	cafe    model.Cafe
}

func (r *cafeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	if len(dest) != 13 {
		panic("cafeRow.Scan: unexpected number of dest")
	}
	c := r.cafe
	*dest[0].(*int) = c.ID
	*dest[1].(*string) = c.Title
	*dest[2].(**string) = c.Description
	*dest[3].(*string) = c.Address
	*dest[4].(*float64) = c.Latitude
	*dest[5].(*float64) = c.Longitude
	*dest[6].(**string) = c.Category
	*dest[7].(**string) = c.ImageURL
	*dest[8].(**string) = c.GoogleMapsURL
	*dest[9].(*int) = c.AuthorID
	*dest[10].(*time.Time) = c.CreatedAt
	*dest[11].(*time.Time) = c.UpdatedAt
	*dest[12].(**string) = c.Author.Name
	return nil
}

// cafeRows 實作 pgx.Rows
type cafeRows struct {
	data    []model.Cafe
	idx     int
	scanErr error
	err     error
	closed  bool
}

func (r *cafeRows) Close()                                       { r.closed = true }
func (r *cafeRows) Err() error                                   { return r.err }
func (r *cafeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *cafeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *cafeRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *cafeRows) Scan(dest ...any) error {
	row := &cafeRow{scanErr: r.scanErr, cafe: r.data[r.idx]}
	r.idx++
	return row.Scan(dest...)
}
func (r *cafeRows) Values() ([]any, error) { return nil, nil }
func (r *cafeRows) RawValues() [][]byte    { return nil }
func (r *cafeRows) Conn() *pgx.Conn        { return nil }

// userRow 實作 pgx.Row，支援 GetUserByEmail (5 欄) 與 CreateUser (2 欄)
type userRow struct {
	scanErr error
	user    model.User
}

func (r *userRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	switch len(dest) {
	case 5:
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Email
		*dest[2].(**string) = u.Name
		*dest[3].(*string) = u.PasswordHash
		*dest[4].(*time.Time) = u.CreatedAt
	case 2:
		*dest[0].(*int) = u.ID
		*dest[1].(*time.Time) = u.CreatedAt
	default:
		panic("userRow.Scan: unexpected number of dest")
	}
	return nil
}

func strPtr(s string) *string { return &s }
