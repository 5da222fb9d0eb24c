package handlers

import (
	"fmt"
	"strconv"
	"strings"
)

// parsePriceCents turns a user-typed price ("12.30", "12,3", "12") into cents.
func parsePriceCents(price string) int {
	price = strings.ReplaceAll(strings.TrimSpace(price), ",", ".")
	var dollars, cents int
	if strings.Contains(price, ".") {
		fmt.Sscanf(price, "%d.%d", &dollars, &cents)
		if cents > 99 {
			cents = 99
		}
		return dollars*100 + cents
	}
	fmt.Sscanf(price, "%d", &dollars)
	return dollars * 100
}

func parseID(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 64)
	return uint(id)
}
