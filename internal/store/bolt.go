package store

import (
	"encoding/json"
	"log"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/appvendas/vendas-backend/internal/domain"
)

// The file keeps the four storage slots the app has always used: payment
// methods and products share the catalog slot.
var (
	slotSales   = []byte("sales")
	slotUsers   = []byte("users")
	slotEvents  = []byte("events")
	slotCatalog = []byte("catalog")

	dataKey = []byte("data")
)

type catalogSlot struct {
	PaymentMethods []domain.PaymentMethod `json:"payment_methods"`
	Products       []domain.Product       `json:"products"`
}

// BoltStorage persists snapshots to a single bbolt file, one bucket per
// slot, the whole snapshot written in one transaction.
type BoltStorage struct {
	db *bolt.DB
}

func OpenBolt(path string) (*BoltStorage, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return &BoltStorage{db: db}, nil
}

func (b *BoltStorage) Close() error { return b.db.Close() }

// Load reads all slots. A missing or unparseable slot starts empty rather
// than failing the whole startup.
func (b *BoltStorage) Load() (Snapshot, error) {
	var snap Snapshot
	err := b.db.View(func(tx *bolt.Tx) error {
		if raw := slotBytes(tx, slotSales); raw != nil {
			var sales []domain.Sale
			if decodeSlot("sales", raw, &sales) {
				snap.Sales = sales
			}
		}
		if raw := slotBytes(tx, slotUsers); raw != nil {
			var users []domain.User
			if decodeSlot("users", raw, &users) {
				snap.Users = users
			}
		}
		if raw := slotBytes(tx, slotEvents); raw != nil {
			var events []domain.Event
			if decodeSlot("events", raw, &events) {
				snap.Events = events
			}
		}
		if raw := slotBytes(tx, slotCatalog); raw != nil {
			var cat catalogSlot
			if decodeSlot("catalog", raw, &cat) {
				snap.PaymentMethods = cat.PaymentMethods
				snap.Products = cat.Products
			}
		}
		return nil
	})
	return snap, err
}

// Save serializes every slot inside one bolt transaction, so multi-record
// mutations such as the event cascade land atomically.
func (b *BoltStorage) Save(snap Snapshot) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		if err := writeSlot(tx, slotSales, snap.Sales); err != nil {
			return err
		}
		if err := writeSlot(tx, slotUsers, snap.Users); err != nil {
			return err
		}
		if err := writeSlot(tx, slotEvents, snap.Events); err != nil {
			return err
		}
		return writeSlot(tx, slotCatalog, catalogSlot{
			PaymentMethods: snap.PaymentMethods,
			Products:       snap.Products,
		})
	})
}

func slotBytes(tx *bolt.Tx, name []byte) []byte {
	bkt := tx.Bucket(name)
	if bkt == nil {
		return nil
	}
	return bkt.Get(dataKey)
}

func decodeSlot(name string, raw []byte, dst interface{}) bool {
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Printf("store: %s slot unreadable, starting empty: %v", name, err)
		return false
	}
	return true
}

func writeSlot(tx *bolt.Tx, name []byte, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	bkt, err := tx.CreateBucketIfNotExists(name)
	if err != nil {
		return err
	}
	return bkt.Put(dataKey, raw)
}
