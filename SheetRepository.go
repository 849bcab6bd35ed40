package main

import (
	"fmt"
	"go.etcd.io/bbolt"
	"gridsheet/contracts"
)

// SheetRepository is the single source of truth for cell state: a bbolt
// bucket mapping position keys to the raw text exactly as typed. Only raw
// text is stored; results are evaluated on every read, so an edit is visible
// to every dependent formula on the next render without any invalidation
// bookkeeping.
type SheetRepository struct {
	db                *bbolt.DB
	evaluator         contracts.Evaluator
	serializer        contracts.PositionSerializer
	webhookDispatcher contracts.WebhookDispatcher
}

var cellsBucket = []byte("cells")

func NewSheetRepository(
	db *bbolt.DB, evaluator contracts.Evaluator,
	serializer contracts.PositionSerializer, webhookDispatcher contracts.WebhookDispatcher,
) *SheetRepository {
	return &SheetRepository{
		db:                db,
		evaluator:         evaluator,
		serializer:        serializer,
		webhookDispatcher: webhookDispatcher,
	}
}

// SetCell stores raw text for a cell and returns it with its evaluated
// result. Empty text deletes the entry: absence is the only blank
// representation. A formula that fails to evaluate is still a successful
// write; the failure is visible only in the result tag.
func (s *SheetRepository) SetCell(cellRef string, value string) (cell *contracts.Cell, err error) {
	position, err := contracts.ParseRef(cellRef)
	if err != nil {
		return nil, err
	}

	cell = &contracts.Cell{Key: position.Ref(), Value: value}
	key := s.serializer.Marshal(position)

	if value == "" {
		err = s.db.Batch(func(tx *bbolt.Tx) error {
			bucket := tx.Bucket(cellsBucket)
			if bucket == nil {
				return nil
			}
			return bucket.Delete(key)
		})
	} else {
		err = s.db.View(func(tx *bbolt.Tx) error {
			// evaluate against the sheet as it will look after commit
			getter := NewCellTextGetterChain(
				NewMapCellGetter(map[contracts.Position]*string{position: &value}),
				s.makeTextGetter(tx),
			)
			cell.Result, _ = s.evaluator.Evaluate(position, value, getter)
			return nil
		})

		if err == nil {
			err = s.db.Batch(func(tx *bbolt.Tx) error {
				bucket, bucketErr := tx.CreateBucketIfNotExists(cellsBucket)
				if bucketErr != nil {
					return bucketErr
				}
				return bucket.Put(key, []byte(value))
			})
		}
	}

	if err == nil && s.webhookDispatcher != nil {
		s.webhookDispatcher.Notify([]*contracts.Cell{cell})
	}

	return
}

// GetCell returns the raw text (verbatim, for the edit surface) and the
// demand-evaluated result. A blank cell is a valid answer, not an error.
func (s *SheetRepository) GetCell(cellRef string) (cell *contracts.Cell, err error) {
	position, err := contracts.ParseRef(cellRef)
	if err != nil {
		return nil, err
	}

	cell = &contracts.Cell{Key: position.Ref()}

	err = s.db.View(func(tx *bbolt.Tx) error {
		getter := s.makeTextGetter(tx)

		if rawText := getter(position); rawText != nil {
			cell.Value = *rawText
		}

		cell.Result, _ = s.evaluator.Evaluate(position, cell.Value, getter)
		return nil
	})

	return
}

// GetCellList renders every stored cell. The cursor walks the bucket in
// row-major key order; evaluation runs against an in-memory snapshot so each
// cell resolves references without further bucket reads.
func (s *SheetRepository) GetCellList() (*contracts.CellList, error) {
	cellList := contracts.CellList{}
	texts := map[contracts.Position]*string{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(cellsBucket)
		if bucket == nil {
			return nil
		}

		c := bucket.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			position, unmarshalErr := s.serializer.Unmarshal(k)
			if unmarshalErr != nil {
				return fmt.Errorf("cell key %v: %w", k, unmarshalErr)
			}

			value := string(v)
			texts[position] = &value
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	getter := NewMapCellGetter(texts)
	for position, value := range texts {
		result, _ := s.evaluator.Evaluate(position, *value, getter)
		cellList[position.Ref()] = &contracts.Cell{Key: position.Ref(), Value: *value, Result: result}
	}

	return &cellList, nil
}

func (s *SheetRepository) makeTextGetter(tx *bbolt.Tx) contracts.CellTextGetter {
	bucket := tx.Bucket(cellsBucket)

	return func(position contracts.Position) *string {
		if bucket == nil {
			return nil
		}

		data := bucket.Get(s.serializer.Marshal(position))
		if data == nil {
			return nil
		}

		value := string(data)
		return &value
	}
}
