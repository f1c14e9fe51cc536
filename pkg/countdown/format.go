// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package countdown

import (
	"fmt"
)

// ZeroDisplay is what the displays show once the countdown has expired.
const ZeroDisplay = "00:00"

// FormatRemaining renders seconds as MM:SS. Negative values render as 00:00.
func FormatRemaining(remaining int64) string {
	if remaining <= 0 {
		return ZeroDisplay
	}
	return fmt.Sprintf("%02d:%02d", remaining/60, remaining%60)
}
