// Package market is the pure settlement domain: the listing ledger, the
// fee policy, and the purchase protocol.
//
// It has no knowledge of WALs, Kafka, or gRPC. External state (token
// ownership, account balances) is reached only through the Registry and
// Treasury capabilities, and every operation either fully commits or
// leaves nothing observable behind.
package market
