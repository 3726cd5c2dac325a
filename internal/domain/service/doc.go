// Package service defines interfaces for core, stateless domain logic and the
// external systems the shop talks to (payment processor, mail, storage, queues).
package service
