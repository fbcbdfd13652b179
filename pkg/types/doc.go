// Package types defines the contact address book: validated fields, records,
// the AddressBook collection with its JSON file format, the Store interface
// that persistence backends implement, and the standard errors.
package types
