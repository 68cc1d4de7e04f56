package download

// Package download implements the sync pipeline: for each selected family it
// downloads the family archive, replaces the family directory with the
// archive's contents, keeps only TrueType files and deletes the archive.
// Families are processed one at a time; cancellation is polled between
// families and progress is pushed to a ProgressSink.
