// Copyright 2013 Richard Lehane. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cfb implements a read-only parser and random-access reader for
// Microsoft's Compound File Binary File Format (MS-CFB), also known as
// OLE2 or structured storage. It is the container format behind legacy
// MS Office documents (.doc, .xls, .ppt), MSI packages, and many other
// Windows artifacts.
//
// A compound file is parsed once, up front: the header is validated, the
// FAT and mini-FAT tables are reconstructed, the directory tree is
// decoded, and the mini-stream is materialized. The resulting Reader is
// immutable and safe for concurrent use by any number of readers.
//
// Example:
//
//	f, _ := os.Open("test.doc")
//	defer f.Close()
//	r, err := cfb.Open(f)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, name := range r.ListStreams() {
//		fmt.Println(name)
//	}
//	data, err := r.OpenStream([]string{"WordDocument"})
//
// cfb never writes or mutates a compound file, and it does not attempt
// to recover from structurally corrupt FAT chains. DIFAT chains beyond
// the 109 sector IDs inlined in the header are not supported and cause
// Open to fail with ErrUnimplemented.
package cfb
