package domain

// SchemaMode records how the input table was interpreted.
type SchemaMode string

const (
	// SchemaHeaderless means columns were assigned by position.
	SchemaHeaderless SchemaMode = "headerless"
	// SchemaHeader means the first row was read as column names.
	SchemaHeader SchemaMode = "header"
)

// RawCityRow holds the four logical columns of one input row before type
// coercion. An empty string marks a missing value.
type RawCityRow struct {
	City       string
	Lat        string
	Lon        string
	Population string

	// Position is the zero-based index of the row among the data rows.
	Position int
}

// Table is the resolved input: its rows and the schema that produced them.
type Table struct {
	Rows   []RawCityRow
	Schema SchemaMode
}

// CityRecord is a row after normalization. All fields are valid.
type CityRecord struct {
	City       string
	Lat        float64
	Lon        float64
	Population float64
	Position   int
}

// CityEntry is the serialized form of one annotated city.
type CityEntry struct {
	Name    string `json:"name"`
	Lat     Coord  `json:"lat"`
	Lng     Coord  `json:"lng"`
	Weight  int    `json:"weight"`
	SigmaKm int    `json:"sigmaKm"`
}
