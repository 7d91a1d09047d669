// Package repo builds the static files of an extension repository.
//
// A run discovers the apk files of the repository, extracts one record per file
// and writes index.json, index.min.json, repo.json and index.html. Every run
// rebuilds the whole index; nothing is read from previous outputs.
package repo
