// Package paths resolves the destination paths given on the command line.
//
// Destinations may use ~ and environment variables; Normalize turns them
// into clean absolute paths before anything is planned. CollectionRoot and
// LastTwo derive collection locations and names from those paths:
//
//	/src/collections/ansible_collections + acme.widgets
//	    -> /src/collections/ansible_collections/acme/widgets
//	/src/acme/demo -> acme.demo
package paths
