package placement

import "errors"

var (
	// ErrNoWorkers is returned when placement is requested for an empty
	// list of workers.
	ErrNoWorkers = errors.New("placement: no workers")

	// ErrRedundancy is returned when replication factor is less than one or
	// greater than the number of distinct workers.
	ErrRedundancy = errors.New("placement: invalid redundancy")

	// ErrUnknownStrategy is returned by ParseStrategy for unknown names.
	ErrUnknownStrategy = errors.New("placement: unknown strategy")
)
