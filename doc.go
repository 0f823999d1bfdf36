// Copyright 2024 Daily Yolk. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package yolk-app-sheets is a small HTTP service that records egg diary entries in a Google Sheets worksheet
and summarises the last week of entries for the Daily Yolk web client.

The service authenticates to Google Sheets with a service account configured from environment variables
(or a .env file) and supports the following commands:

  - run, to start the HTTP service (submit-entry, recent-entries, hello, test-env)
  - submit, to append a single entry to the worksheet from the command line
  - recent, to display the 7 day presence calendar
  - check-env, to verify the service account configuration
  - token, to generate a short-lived Google Sheets access token
  - get, to download the entries worksheet as a TSV file
  - put, to append the entries in a TSV file to the worksheet
*/
package sheets
