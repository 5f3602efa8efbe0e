package app

// BatchSink exposes batchSink for tests.
var BatchSink = batchSink
