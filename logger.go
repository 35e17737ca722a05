package sensironsht4x

import (
	logger "github.com/d2r2/go-logger"
)

// lg is used by Sensor only; Session never logs.
var lg = logger.NewPackageLogger("sht4x", logger.InfoLevel)
