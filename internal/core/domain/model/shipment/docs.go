// Package shipment provides the shipment ("package") read model shown by shipdesk
// together with the pure rules that operate on it.
//
// The package includes:
//   - Shipment: the record fetched from the upstream courier backend
//   - Status: the lifecycle state machine of a shipment
//   - Presentation: status to badge color and label mapping
//   - Matches: the search predicate used to narrow a shipment list
//
// Key business rules:
//   - Status moves forward along Created -> PickedUp -> InTransit -> Delivered
//   - Cancelled is reachable from every non-terminal status
//   - Delivered and Cancelled are terminal
//   - Unknown statuses are preserved verbatim and presented with the default style
//
// Shipments are owned by the upstream backend; shipdesk never persists them.
package shipment
