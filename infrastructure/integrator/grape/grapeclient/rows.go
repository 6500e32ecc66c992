package grapeclient

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/grape-extractor/internal/domain"
)

// decodeRows extrai o array "Rows" do corpo preservando a ordem em que as
// chaves aparecem em cada linha. Um map comum perderia essa ordem e com ela
// a ordem das colunas do CSV.
func decodeRows(body []byte) ([]*domain.Record, error) {
	iter := json.BorrowIterator(body)
	defer json.ReturnIterator(iter)

	rows := []*domain.Record{}
	hasRows := false

	iter.ReadMapCB(func(i *jsoniter.Iterator, field string) bool {
		if field != "Rows" {
			i.Skip()
			return true
		}

		if i.WhatIsNext() == jsoniter.NilValue {
			i.ReadNil()
			return true
		}

		hasRows = true

		i.ReadArrayCB(func(elem *jsoniter.Iterator) bool {
			rows = append(rows, readRecord(elem))
			return elem.Error == nil || elem.Error == io.EOF
		})

		return true
	})

	if iter.Error != nil && iter.Error != io.EOF {
		return nil, fmt.Errorf("corpo da resposta inválido: %w", iter.Error)
	}

	if !hasRows {
		return nil, ErrMissingRows
	}

	return rows, nil
}

// readRecord lê um objeto JSON como registro ordenado
func readRecord(iter *jsoniter.Iterator) *domain.Record {
	record := domain.NewRecord()

	iter.ReadMapCB(func(i *jsoniter.Iterator, key string) bool {
		record.Set(key, readValue(i))
		return i.Error == nil || i.Error == io.EOF
	})

	return record
}

// readValue lê o próximo valor mantendo números como json.Number, para que
// o CSV reproduza o literal recebido sem arredondamento de float
func readValue(iter *jsoniter.Iterator) any {
	switch iter.WhatIsNext() {
	case jsoniter.StringValue:
		return iter.ReadString()
	case jsoniter.NumberValue:
		return iter.ReadNumber()
	case jsoniter.BoolValue:
		return iter.ReadBool()
	case jsoniter.NilValue:
		iter.ReadNil()
		return nil
	case jsoniter.ArrayValue:
		items := []any{}
		iter.ReadArrayCB(func(elem *jsoniter.Iterator) bool {
			items = append(items, readValue(elem))
			return elem.Error == nil || elem.Error == io.EOF
		})
		return items
	case jsoniter.ObjectValue:
		return readRecord(iter)
	default:
		iter.Skip()
		return nil
	}
}
