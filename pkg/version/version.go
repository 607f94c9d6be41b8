// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package version

// Version of the rugix-site binary, set with -ldflags "-X" at build time
var Version = "binary was not built properly"
