package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// Every service operation acquires its own transaction-scoped handles
// through Execute instead of sharing a long-lived session; the handles
// are released deterministically on every exit path.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise it is committed. All repository operations within the
	// function use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so all operations within one Execute call share a single
// database connection.
type RepositoryFactory interface {
	// AddressRepo returns an AddressRepository bound to the current transaction.
	AddressRepo() AddressRepository

	// CustomerRepo returns a CustomerRepository bound to the current transaction.
	CustomerRepo() CustomerRepository

	// ProductRepo returns a ProductRepository bound to the current transaction.
	ProductRepo() ProductRepository

	// PropertyRepo returns a PropertyRepository bound to the current transaction.
	PropertyRepo() PropertyRepository

	// CartRepo returns a CartRepository bound to the current transaction.
	CartRepo() CartRepository
}
