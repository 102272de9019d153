// File: doc.go
// Title: Package Documentation for registry
// Description: Package registry provides the name-to-handler mapping the
//              dispatch loop resolves commands against, with strict
//              no-overwrite registration semantics.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

/*
Package registry provides command registration and lookup for cmdkit.

The registry is a per-interpreter mapping from command name to handler.
Its contract is intentionally strict:

  • Names are case-sensitive and matched exactly — no abbreviations,
    no aliases, no fuzzy resolution.
  • A name, once registered, is never silently replaced. A duplicate
    registration fails with ErrExists and the original handler stays
    active.
  • Blank names and nil handlers are rejected at registration time.

Each interpreter instance owns its own registry, so independent
interpreters never share command tables. Registration happens at
composition time; there is no removal or update operation.
*/
package registry
