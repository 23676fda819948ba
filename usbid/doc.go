// Package usbid reads the usb.ids vendor and product name database.
//
// The database is a text file distributed with usbutils and hwdata. Vendor
// lines begin with a four-digit hex ID, product lines with a tab and a
// four-digit hex ID, and the device class sections that follow the vendor
// list are ignored:
//
//	2341  Arduino SA
//		0043  Uno R3 (CDC ACM)
//
// Load the first database found in the standard locations:
//
//	db, err := usbid.Load(usbid.DefaultPaths...)
//	if err != nil {
//		// db is empty but usable
//	}
//	name := db.LookupVendor(0x2341)
//
// A Database is immutable once loaded and safe for concurrent use.
package usbid
