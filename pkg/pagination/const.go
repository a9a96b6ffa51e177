package pagination

// ListDefaultLimit and ListMaxLimit bound the standard paginated listing.
const (
	ListDefaultLimit = 10
	ListMaxLimit     = 100
)

// DumpDefaultLimit and DumpMaxLimit bound the bulk "all" listing.
const (
	DumpDefaultLimit = 100
	DumpMaxLimit     = 1000
)
