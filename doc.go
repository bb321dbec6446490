/*
Package patchingo locates byte signatures inside the executable code of the
running process and applies in-place, undoable patches to it.

Scanning compiles a hex pattern with "??" wildcards, snapshots the image's
code section and runs a wildcard-aware Knuth-Morris-Pratt search over it.
Patching decodes instructions at the matched addresses to find their
boundaries, then overwrites whole instruction spans with NOPs or with a
synthesized constant-return sequence, capturing the original bytes so every
patch can be restored.

All physical byte access goes through a Protector, which flips the page
protection around each access and restores it afterwards. Protection,
module lookup and disassembly are small interfaces with OS-backed defaults,
so tests substitute fakes for all three.
*/
package patchingo
