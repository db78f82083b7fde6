package domain

// ColumnMapping names the source column for each card field a bulk
// import can fill. Nil means the uploaded file has no such column.
// Word and Definition are the only fields an import cannot do without.
type ColumnMapping struct {
	Word       *string
	Definition *string
	Example    *string
	Synonym    *string
	Antonym    *string
	Notes      *string
}

// ImportRowError records why one row of an uploaded file was rejected.
type ImportRowError struct {
	Row     int
	Message string
}

// ImportResult summarizes a bulk import run. Failed rows do not abort
// the run; they are collected here.
type ImportResult struct {
	Success int
	Failed  int
	Errors  []ImportRowError
}
