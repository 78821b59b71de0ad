package cli

// French month and weekday names, as printed on the calendar.
var frMonths = [12]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// frDaysShort is indexed Monday-first (the calendar's week layout).
var frDaysShort = [7]string{"Lun", "Mar", "Mer", "Jeu", "Ven", "Sam", "Dim"}

// mondayIndex converts time.Weekday (Sunday = 0) to Monday-first.
func mondayIndex(wd int) int {
	if wd == 0 {
		return 6
	}
	return wd - 1
}
