// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrNotMP3File indicates the stream has no decodable MPEG audio frames
var ErrNotMP3File = errors.New("not an MP3 file")
