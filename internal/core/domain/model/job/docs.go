// Package job provides the DeliveryJob aggregate and its destination Address.
//
// The package includes:
//   - Job: the aggregate root holding destination, money, slot, vehicle and completion
//   - Address: the destination entity, created fresh for every job
//   - Status: the completion state derived from vehicle assignment and completion time
//
// Key business rules:
//   - A job can only be completed once it has a vehicle
//   - Completion is terminal: a completed job cannot be completed again
//   - The completion time is not compared against the delivery slot
//   - Income has at most 4 integer digits and cost at most 3, both in cents precision
//
// Lifecycle:
//
//	Unassigned --(assign vehicle)--> Assigned --(complete)--> Completed
//	Unassigned --(complete)--> PreconditionFailed
//	Completed  --(complete)--> PreconditionFailed
package job
