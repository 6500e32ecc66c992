package domain

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Record é um registro com campos ordenados, usado para preservar a ordem
// das colunas vindas da API até o CSV final. Um Set de chave já existente
// sobrescreve o valor mas mantém a posição original da chave.
type Record struct {
	keys   []string
	values map[string]any
}

func NewRecord() *Record {
	return &Record{
		keys:   []string{},
		values: map[string]any{},
	}
}

// Set grava um campo no registro, preservando a ordem de inserção.
func (r *Record) Set(key string, value any) {
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get retorna o valor de um campo e se ele existe no registro.
func (r *Record) Get(key string) (any, bool) {
	value, ok := r.values[key]
	return value, ok
}

// Keys retorna os nomes dos campos na ordem em que foram inseridos.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

func (r *Record) Len() int {
	return len(r.keys)
}

// Merge copia os campos de other para r, na ordem de other.
func (r *Record) Merge(other *Record) {
	if other == nil {
		return
	}
	for _, key := range other.keys {
		r.Set(key, other.values[key])
	}
}

// MarshalJSON serializa o registro preservando a ordem de inserção das
// chaves, algo que um map comum não garante.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')

		value, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
