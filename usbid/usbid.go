package usbid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/ardnew/comi/pkg"
)

// DefaultPaths lists the standard locations of the database.
var DefaultPaths = []string{
	"/usr/share/hwdata/usb.ids",
	"/var/lib/usbutils/usb.ids",
	"/usr/share/misc/usb.ids",
	"/usr/local/share/usb.ids",
	"/opt/homebrew/share/usb.ids",
}

// idWidth is the number of hex digits in a vendor or product ID.
const idWidth = 4

// Database maps vendor and product IDs to names.
type Database struct {
	vendors  map[uint16]string
	products map[uint32]string // vid<<16 | pid
}

func newDatabase() *Database {
	return &Database{
		vendors:  make(map[uint16]string),
		products: make(map[uint32]string),
	}
}

// Load parses the first readable file in paths. When none can be opened it
// returns an empty database and an error wrapping fs.ErrNotExist.
func Load(paths ...string) (*Database, error) {
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		db, err := Parse(f)
		f.Close()
		if err != nil {
			return db, fmt.Errorf("usbid: %s: %w", path, err)
		}
		pkg.LogDebug(pkg.ComponentPresent, "loaded usb id database",
			"path", path, "vendors", len(db.vendors), "products", len(db.products))
		return db, nil
	}
	return newDatabase(), fmt.Errorf("usbid: %w", fs.ErrNotExist)
}

// Parse reads a database from r. Malformed lines are skipped. Entries parsed
// before a read error are kept in the returned database.
func Parse(r io.Reader) (*Database, error) {
	db := newDatabase()
	sc := bufio.NewScanner(r)

	var (
		vid    uint16
		vendor bool // vid names a vendor section
	)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || line[0] == '#' {
			continue
		}

		if line[0] != '\t' {
			id, name, ok := splitEntry(line)
			vendor = ok
			if ok {
				vid = id
				db.vendors[vid] = name
			}
			continue
		}

		// Lines with two leading tabs are interfaces; they never follow a
		// product we care about.
		if !vendor || strings.HasPrefix(line, "\t\t") {
			continue
		}
		if pid, name, ok := splitEntry(line[1:]); ok {
			db.products[productKey(vid, pid)] = name
		}
	}
	if err := sc.Err(); err != nil && !errors.Is(err, io.EOF) {
		return db, err
	}
	return db, nil
}

// splitEntry parses "xxxx  Name". Class lines ("C 02  Communications") and
// other section headers fail to parse.
func splitEntry(line string) (uint16, string, bool) {
	if len(line) <= idWidth || line[idWidth] != ' ' {
		return 0, "", false
	}
	id, err := strconv.ParseUint(line[:idWidth], 16, 16)
	if err != nil {
		return 0, "", false
	}
	name := strings.TrimSpace(line[idWidth:])
	if name == "" {
		return 0, "", false
	}
	return uint16(id), name, true
}

func productKey(vid, pid uint16) uint32 {
	return uint32(vid)<<16 | uint32(pid)
}

// LookupVendor returns the vendor name for vid, or "" if unknown.
func (db *Database) LookupVendor(vid uint16) string {
	return db.vendors[vid]
}

// LookupProduct returns the product name for vid and pid, or "" if unknown.
func (db *Database) LookupProduct(vid, pid uint16) string {
	return db.products[productKey(vid, pid)]
}

// Len returns the number of vendors and products in the database.
func (db *Database) Len() (vendors, products int) {
	return len(db.vendors), len(db.products)
}
