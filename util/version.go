package util

// KushDriverID identifies this build of the Kush link driver.
const KushDriverID = "kushld 0.3.0"
