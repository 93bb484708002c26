package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Document representa un archivo adjunto opcional.
// Valid=false equivale a NULL; Valid=true con Data vacío es un archivo vacío.
type Document struct {
	Data  []byte
	Valid bool
}

// NewDocument crea un documento presente con los bytes dados
func NewDocument(data []byte) Document {
	if data == nil {
		data = []byte{}
	}
	return Document{Data: data, Valid: true}
}

// Scan implementa sql.Scanner
func (d *Document) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		d.Data, d.Valid = nil, false
	case []byte:
		d.Data = append([]byte{}, v...)
		d.Valid = true
	case string:
		d.Data = []byte(v)
		d.Valid = true
	default:
		return fmt.Errorf("tipo de documento no soportado: %T", value)
	}
	return nil
}

// Value implementa driver.Valuer
func (d Document) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	if d.Data == nil {
		return []byte{}, nil
	}
	return d.Data, nil
}

// MarshalJSON serializa null o el contenido en base64
func (d Document) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	if d.Data == nil {
		return json.Marshal([]byte{})
	}
	return json.Marshal(d.Data)
}

// UnmarshalJSON acepta null o una cadena base64
func (d *Document) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		d.Data, d.Valid = nil, false
		return nil
	}
	var data []byte
	if err := json.Unmarshal(b, &data); err != nil {
		return err
	}
	*d = NewDocument(data)
	return nil
}
