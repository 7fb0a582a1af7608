// Copyright 2026 the sheetbridge authors. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package sheetbridge synchronises tabular data between a Google Sheets worksheet and an
Excel workbook stored on OneDrive.

sheetbridge runs as a small web service: a static control page triggers a sync, which
reads the current snapshot from both sources, compares content fingerprints and, if
they differ, overwrites the workbook with the spreadsheet's data. The spreadsheet is
always treated as authoritative; nothing is retried and nothing is persisted between
invocations.

The service exposes three endpoints:

  - GET /, the control page
  - POST /sync, to run one synchronisation
  - GET /status, to report whether each source initialised at startup

Both remote resources and their credentials are configured through environment
variables (optionally preloaded from a .env file); see internal/config for the
complete list.
*/
package sheetbridge
