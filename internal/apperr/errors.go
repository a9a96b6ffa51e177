package apperr

// NotCrawlableError means the extraction adapter could not turn the page into
// article fields. The underlying reason is logged, never surfaced.
type NotCrawlableError struct {
	URL string
	Err error
}

func (e *NotCrawlableError) Error() string {
	if e.Err != nil {
		return "news is not crawlable: " + e.Err.Error()
	}
	return "news is not crawlable"
}

func (e *NotCrawlableError) Unwrap() error {
	return e.Err
}

func NewNotCrawlable(url string, err error) *NotCrawlableError {
	return &NotCrawlableError{URL: url, Err: err}
}

// NotFoundError is a normal empty/absent result, not a failure.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFound(msg string) *NotFoundError {
	return &NotFoundError{Message: msg}
}

// StorageError wraps any persistence-layer failure. Callers get a generic
// server error; the detail stays in the logs.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return "storage failure during " + e.Op + ": " + e.Err.Error()
	}
	return "storage failure during " + e.Op
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}
