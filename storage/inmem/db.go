// Package inmem provides in-memory repositories, used as test doubles for
// the mongodb storage layer.
package inmem

import (
	"sync"

	"github.com/pichalabs/picha/core/class"
	"github.com/pichalabs/picha/core/payment"
	"github.com/pichalabs/picha/core/selection"
	"github.com/pichalabs/picha/core/user"
)

type (
	userTable struct {
		mutex sync.RWMutex
		table map[string]*user.User // keyed by hex id
	}

	classTable struct {
		mutex sync.RWMutex
		table map[string]*class.ClassItem
	}

	selectionTable struct {
		mutex sync.RWMutex
		table map[string]*selection.Entry
	}

	paymentTable struct {
		mutex sync.RWMutex
		table []payment.Record
	}

	DB struct {
		user      *userTable
		class     *classTable
		selection *selectionTable
		payment   *paymentTable
	}
)

func NewDB() *DB {
	db := new(DB)
	db.Reset()
	return db
}

func (db *DB) Reset() {
	db.user = &userTable{table: make(map[string]*user.User)}
	db.class = &classTable{table: make(map[string]*class.ClassItem)}
	db.selection = &selectionTable{table: make(map[string]*selection.Entry)}
	db.payment = &paymentTable{}
}
