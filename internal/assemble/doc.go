// Package assemble writes a validated draft to disk as an editor project
// folder: the serialized document, its meta and sidecar files, and a
// materials folder holding verified copies of every referenced asset. The
// folder is staged and renamed into place so failed runs leave nothing at
// the final path.
package assemble
