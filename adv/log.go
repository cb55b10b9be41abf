package adv

import "github.com/mgutz/logxi/v1"

var logger = log.New("adv")
