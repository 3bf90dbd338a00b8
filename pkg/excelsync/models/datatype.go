package models

// DataType tags the inferred type of a column.
//
// The six constants below are the known tags. Any other value is the
// fallback variant built by OtherDataType and carries the name of the
// runtime type that was sampled.
type DataType string

const (
	DataTypeNull     DataType = "null"
	DataTypeBoolean  DataType = "boolean"
	DataTypeInteger  DataType = "integer"
	DataTypeNumber   DataType = "number"
	DataTypeString   DataType = "string"
	DataTypeDatetime DataType = "datetime"
)

// OtherDataType returns the fallback tag for a value of an unrecognised type.
func OtherDataType(typeName string) DataType {
	return DataType(typeName)
}

// Known reports whether d is one of the fixed tags.
func (d DataType) Known() bool {
	switch d {
	case DataTypeNull, DataTypeBoolean, DataTypeInteger, DataTypeNumber, DataTypeString, DataTypeDatetime:
		return true
	}
	return false
}

func (d DataType) String() string {
	return string(d)
}
