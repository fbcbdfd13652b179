package sqlite

// Schema DDL for the address book tables.
const (
	createContacts = `CREATE TABLE IF NOT EXISTS contacts (
    contact_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    birthday TEXT,
    position INTEGER NOT NULL
);`

	createPhones = `CREATE TABLE IF NOT EXISTS phones (
    contact_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    phone TEXT NOT NULL,
    PRIMARY KEY (contact_id, position),
    FOREIGN KEY (contact_id) REFERENCES contacts(contact_id) ON DELETE CASCADE
);`
)

// Index DDL for ordered loading.
const (
	idxContactsPosition = `CREATE INDEX IF NOT EXISTS idx_contacts_position ON contacts(position);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createContacts,
	createPhones,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxContactsPosition,
}
