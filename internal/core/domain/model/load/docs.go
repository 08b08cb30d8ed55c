// Package load provides the Load aggregate and its lifecycle state machine.
//
// The package includes:
//   - Load: the aggregate root holding shipment terms, status, assignee and timeline
//   - Status: the lifecycle states POSTED, MATCHED, ASSIGNED, IN_TRANSIT, DELIVERED,
//     CLOSED and CANCELLED
//   - Action: the commands that move a load along the transition graph
//   - Terms: the immutable shipment terms fixed at posting time
//   - Capability: a trucker's vehicle type and capacity used to filter available loads
//   - Timeline: one timestamp per status entered
//
// Key business rules:
//   - Status only moves forward along the graph; CLOSED and CANCELLED are terminal
//   - The assignee is present exactly when the status is MATCHED or later (but not CANCELLED)
//   - Exactly one trucker is ever recorded as assignee for a load
//   - Authorization of the actor is checked before the status precondition
package load
