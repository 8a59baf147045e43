// Package bambu connects to Bambu Lab printers over their local MQTT
// interface and turns status reports into AMS trays.
//
// Each printer runs its own broker (TLS, port 8883, user "bblp", the LAN
// access code as password). Reports are published on
// device/{serial}/report; commands such as "pushall" go to
// device/{serial}/request.
//
// ParseReport extracts the trays of every AMS unit from a report. Empty
// slots and zeroed identifiers are normalized away so the reconcile engine
// only ever sees real spools.
package bambu
