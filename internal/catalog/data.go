package catalog

import "github.com/velofab/pallet-service/internal/domain/model"

func dims(l, w, h, lbs float64) *model.CartonDims {
	return &model.CartonDims{LengthIn: l, WidthIn: w, HeightIn: h, WeightLbs: lbs}
}

// seedProducts holds the measured carton data for the standard product lines.
// Dimensions come from the shipping carton as measured on the dock, not the
// assembled product.
func seedProducts() []model.Product {
	return []model.Product{
		{SKU: "DV215", DisplayName: "Varsity Rack 2-Pack", Family: "Varsity", Group: model.GroupVarsity, Packaged: dims(34.5, 11.0, 13.5, 30)},
		{SKU: "90101-2287", DisplayName: "Varsity Rack 2-Pack", Family: "Varsity", Group: model.GroupVarsity, Packaged: dims(34.5, 11.0, 13.5, 30)},
		{SKU: "VR2", DisplayName: "VR2 Vertical Rack", Family: "VR Series", Group: model.GroupVR, Packaged: dims(42.8, 24.9, 13.4, 31)},
		{SKU: "VR4", DisplayName: "VR4 Vertical Rack", Family: "VR Series", Group: model.GroupVR, Packaged: dims(42.8, 24.9, 21.6, 54)},
		{SKU: "DD-4", DisplayName: "Double Docker 4-Bike", Family: "Double Docker 4", Group: model.GroupDoubleDocker4, Packaged: dims(84.0, 48.0, 56.0, 199)},
		{SKU: "DD-6", DisplayName: "Double Docker 6-Bike", Family: "Double Docker 6", Group: model.GroupDoubleDocker6, Packaged: dims(84.0, 48.0, 56.0, 269)},
		{SKU: "MBV-1", DisplayName: "Metal Bike Locker Single", Family: "Locker", Group: model.GroupLockerMetal1, Packaged: dims(42.3, 30.5, 24.5, 96)},
		{SKU: "MBV-2", DisplayName: "Metal Bike Locker Double", Family: "Locker 2", Group: model.GroupLockerMetal2, Packaged: dims(42.3, 30.5, 48.8, 182)},
		{SKU: "MBVISI-1", DisplayName: "Visi Bike Locker Single", Family: "Visi Locker", Group: model.GroupLockerVisi1, Packaged: dims(42.3, 30.5, 26.0, 108)},
		{SKU: "MBVISI-2", DisplayName: "Visi Bike Locker Double", Family: "Visi Locker 2", Group: model.GroupLockerVisi2, Packaged: dims(42.3, 30.5, 51.0, 205)},
		{SKU: "HR-5", DisplayName: "Hoop Runner 5-Bike", Family: "Hoop Runner", Group: model.GroupHoopRunner, Packaged: dims(57.5, 23.0, 12.0, 58)},
		{SKU: "CS-8", DisplayName: "Circle Series 8-Bike", Family: "Circle Series", Group: model.GroupCircleSeries, Packaged: dims(46.0, 46.0, 10.5, 64)},
		{SKU: "UG-SS3", DisplayName: "Undergrad Single-Sided 3", Family: "Undergrad", Group: model.GroupUndergradSS3, Packaged: dims(58.0, 48.0, 12.0, 88)},
		{SKU: "UG-SS4", DisplayName: "Undergrad Single-Sided 4", Family: "Undergrad", Group: model.GroupUndergradSS4, Packaged: dims(76.0, 48.0, 12.0, 104)},
		{SKU: "UG-SS5", DisplayName: "Undergrad Single-Sided 5", Family: "Undergrad", Group: model.GroupUndergradSS5, Packaged: dims(94.0, 48.0, 12.0, 121)},
		{SKU: "UG-DS6", DisplayName: "Undergrad Double-Sided 6", Family: "Undergrad", Group: model.GroupUndergradDS6, Packaged: dims(100.0, 48.0, 13.0, 130)},
		{SKU: "UG-DS8", DisplayName: "Undergrad Double-Sided 8", Family: "Undergrad", Group: model.GroupUndergradDS8, Packaged: dims(130.0, 48.0, 13.0, 148)},
		{SKU: "UG-DS10", DisplayName: "Undergrad Double-Sided 10", Family: "Undergrad", Group: model.GroupUndergradDS10, Packaged: dims(160.0, 48.0, 13.0, 167)},
		{SKU: "SKD-1", DisplayName: "Skatedock Section", Family: "Skatedock", Group: model.GroupSkatedock, Packaged: dims(79.0, 30.5, 9.0, 115)},
		{SKU: "SST-48", DisplayName: "Side Stage 48", Family: "Side Stage", Group: model.GroupSideStage, Packaged: dims(49.0, 25.0, 11.0, 75)},
		{SKU: "SIK120", DisplayName: "Strut Kit 120", Family: "Strut Kit", Group: model.GroupStrutKit, Packaged: dims(49.0, 5.0, 4.0, 12)},
		{SKU: "SIK60", DisplayName: "Strut Kit 60", Family: "Strut Kit", Group: model.GroupStrutKit, Packaged: dims(6.0, 6.0, 6.0, 10)},
		{SKU: "DSM-1", DisplayName: "Dismount Rail", Family: "Dismount", Group: model.GroupDismount, Packaged: dims(46.5, 14.0, 8.0, 42)},
		{SKU: "MR-10", DisplayName: "Mixable Rack 10", Family: "Mixable Rack", Group: model.GroupMixableRack, Packaged: dims(40.0, 22.0, 14.0, 45)},
	}
}
