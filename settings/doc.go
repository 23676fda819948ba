// Package settings locates, loads, saves, and installs the alias settings
// file.
//
// The file holds a single object with a "com_ports" list of alias entries:
//
//	{ "com_ports": [
//	    { "alias": "printer", "product_id": 4660, "serial_number": "ABC123",
//	      "manufacturer": "Acme", "product_name": null }
//	] }
//
// A missing or null "com_ports" is an empty list. Files named *.yaml or
// *.yml are decoded as YAML with the same field names.
//
// The default location is Comi/settings.json under the user's documents
// directory. [Install] seeds that location from a template the first time
// the tool runs.
package settings
