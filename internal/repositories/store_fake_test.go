package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeStore is an in-memory stand-in for a pgx transaction. It understands
// exactly the statements the upload engine issues, keeps rows in slices, and
// can be told to misbehave in the ways the engine defends against.
type fakeStore struct {
	today   string
	masters []fakeMaster
	details []fakeDetail

	// Failure injection
	swallowMasterInserts bool  // insert "succeeds" but the row never lands
	swallowDetailInserts bool
	frozenDetailCount    *int64 // join count always reports this value
	execErr              error  // every Exec fails with this
}

type fakeMaster struct {
	slno      int64
	orderno   int64
	supplier  string
	otype     string
	userid    string
	orderdate string
}

type fakeDetail struct {
	slno       int64
	masterslno int64
	barcode    string
	qty        float64
	rate       float64
	mrp        float64
}

func newFakeStore() *fakeStore {
	return &fakeStore{today: "2024-01-01"}
}

func (f *fakeStore) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}

	switch {
	case strings.Contains(sql, "INSERT INTO acc_purchaseordermaster"):
		if f.swallowMasterInserts {
			return pgconn.CommandTag{}, nil
		}
		row := fakeMaster{
			slno:      args[0].(int64),
			orderno:   args[1].(int64),
			supplier:  args[2].(string),
			otype:     args[3].(string),
			userid:    args[4].(string),
			orderdate: args[5].(string),
		}
		for _, m := range f.masters {
			if m.slno == row.slno {
				return pgconn.CommandTag{}, fmt.Errorf("duplicate key value violates unique constraint \"acc_purchaseordermaster_pkey\"")
			}
		}
		f.masters = append(f.masters, row)
		return pgconn.CommandTag{}, nil

	case strings.Contains(sql, "INSERT INTO acc_purchaseorderdetails"):
		if f.swallowDetailInserts {
			return pgconn.CommandTag{}, nil
		}
		row := fakeDetail{
			slno:       args[0].(int64),
			masterslno: args[1].(int64),
			barcode:    args[2].(string),
			qty:        args[3].(float64),
			rate:       args[4].(float64),
			mrp:        args[5].(float64),
		}
		for _, d := range f.details {
			if d.slno == row.slno {
				return pgconn.CommandTag{}, fmt.Errorf("duplicate key value violates unique constraint \"acc_purchaseorderdetails_pkey\"")
			}
		}
		f.details = append(f.details, row)
		return pgconn.CommandTag{}, nil
	}

	return pgconn.CommandTag{}, fmt.Errorf("fakeStore: unexpected exec: %s", sql)
}

func (f *fakeStore) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	switch {
	case strings.Contains(sql, "JOIN acc_purchaseorderdetails"):
		if f.frozenDetailCount != nil {
			return fakeRow{val: *f.frozenDetailCount}
		}
		return fakeRow{val: f.detailsToday()}

	case strings.Contains(sql, "WHERE orderdate = CURRENT_DATE"):
		return fakeRow{val: f.mastersToday()}

	case strings.Contains(sql, "MAX(slno)") && strings.Contains(sql, masterTable):
		var max int64
		for _, m := range f.masters {
			if m.slno > max {
				max = m.slno
			}
		}
		return fakeRow{val: max}

	case strings.Contains(sql, "MAX(slno)") && strings.Contains(sql, detailTable):
		var max int64
		for _, d := range f.details {
			if d.slno > max {
				max = d.slno
			}
		}
		return fakeRow{val: max}

	case strings.Contains(sql, "FROM acc_purchaseordermaster WHERE slno = $1"):
		var n int64
		for _, m := range f.masters {
			if m.slno == args[0].(int64) {
				n++
			}
		}
		return fakeRow{val: n}

	case strings.Contains(sql, "FROM acc_purchaseorderdetails WHERE slno = $1"):
		var n int64
		for _, d := range f.details {
			if d.slno == args[0].(int64) {
				n++
			}
		}
		return fakeRow{val: n}
	}

	return fakeRow{err: fmt.Errorf("fakeStore: unexpected query: %s", sql)}
}

func (f *fakeStore) mastersToday() int64 {
	var n int64
	for _, m := range f.masters {
		if m.orderdate == f.today {
			n++
		}
	}
	return n
}

func (f *fakeStore) detailsToday() int64 {
	var n int64
	for _, d := range f.details {
		for _, m := range f.masters {
			if m.slno == d.masterslno && m.orderdate == f.today {
				n++
			}
		}
	}
	return n
}

type fakeRow struct {
	val int64
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != 1 {
		return fmt.Errorf("fakeRow: expected one destination, got %d", len(dest))
	}
	p, ok := dest[0].(*int64)
	if !ok {
		return fmt.Errorf("fakeRow: expected *int64 destination, got %T", dest[0])
	}
	*p = r.val
	return nil
}
